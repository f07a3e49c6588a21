package zson

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	text := `{"name":"zson","values":[1,2,3.5,-4,null,true,false],"nested":{"a":1}}`
	doc, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	original := append([]byte(nil), doc.Bytes()...)

	for _, codec := range []PackCodec{PackNone, PackFast, PackBest} {
		packed, err := Pack(nil, doc, codec)
		if err != nil {
			t.Fatalf("Pack(codec=%d) failed: %v", codec, err)
		}
		restored, err := Unpack(packed)
		if err != nil {
			t.Fatalf("Unpack(codec=%d) failed: %v", codec, err)
		}
		if string(restored.Bytes()) != string(original) {
			t.Errorf("codec %d: round trip mismatch\ngot:  %v\nwant: %v", codec, restored.Bytes(), original)
		}
		obj, ok := restored.Root().Object()
		if !ok {
			t.Fatalf("codec %d: restored root is not an object", codec)
		}
		if v, ok := obj.ByName("name"); !ok {
			t.Errorf("codec %d: \"name\" missing after restore", codec)
		} else if s, _ := v.String(); s != "zson" {
			t.Errorf("codec %d: \"name\" = %q, want \"zson\"", codec, s)
		}
	}
}

func TestPackAppendsToExistingBuffer(t *testing.T) {
	doc, err := Parse([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	prefix := []byte("PREFIX")
	packed, err := Pack(append([]byte(nil), prefix...), doc, PackNone)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if string(packed[:len(prefix)]) != string(prefix) {
		t.Errorf("Pack did not preserve destination prefix")
	}
}

func TestUnpackRejectsBadVersion(t *testing.T) {
	_, err := Unpack([]byte{99, byte(PackNone), 0})
	if err == nil {
		t.Fatal("Unpack with bad version unexpectedly succeeded")
	}
}

func TestUnpackRejectsUnknownCodec(t *testing.T) {
	_, err := Unpack([]byte{packVersion, 0x7f, 0})
	if err == nil {
		t.Fatal("Unpack with unknown codec unexpectedly succeeded")
	}
}
