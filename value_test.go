package zson

import "testing"

func TestLoadOutOfRangeIsInvalid(t *testing.T) {
	buf := []byte{byte(TagNull)}
	v := Load(buf, 5)
	if v.Kind() != KindInvalid {
		t.Errorf("Kind() = %v, want KindInvalid", v.Kind())
	}
}

func TestLoadSequenceEndIsInvalid(t *testing.T) {
	buf := []byte{byte(TagSequenceEnd)}
	v := Load(buf, 0)
	if v.Kind() != KindInvalid {
		t.Errorf("Kind() = %v, want KindInvalid", v.Kind())
	}
}

func TestLoadGarbageTagIsInvalid(t *testing.T) {
	// 0x00 matches none of the tag families (it is only ever used as a
	// string terminator, never as a leading tag byte), so it falls
	// through every family check: the Navigator never fails, it reports
	// KindInvalid instead.
	buf := []byte{0x00}
	v := Load(buf, 0)
	if v.Kind() != KindInvalid {
		t.Errorf("Kind() = %v, want KindInvalid", v.Kind())
	}
}

func TestStringBytesAliasesBuffer(t *testing.T) {
	doc, err := Parse([]byte(`"hello"`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, ok := doc.Root().StringBytes()
	if !ok {
		t.Fatal("not a string")
	}
	if &b[0] != &doc.Bytes()[doc.Root().pos+1] {
		t.Error("StringBytes does not alias the document's buffer")
	}
}

func TestDocumentBytesTruncatedToContent(t *testing.T) {
	buf := make([]byte, 64)
	copy(buf, []byte(`1`))
	doc, err := Parse(buf[:1])
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Bytes()) != 1 {
		t.Errorf("len(Bytes()) = %d, want 1", len(doc.Bytes()))
	}
}

func TestValueSize(t *testing.T) {
	doc, err := Parse([]byte(`[1,"ab",true]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := doc.Root()
	if got := root.Size(); got != len(doc.Bytes()) {
		t.Errorf("Size() = %d, want %d", got, len(doc.Bytes()))
	}
}

func TestAccessorsReturnFalseForWrongKind(t *testing.T) {
	doc, err := Parse([]byte(`1`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := doc.Root()
	if _, ok := root.Bool(); ok {
		t.Error("Bool() on a number unexpectedly succeeded")
	}
	if _, ok := root.String(); ok {
		t.Error("String() on a number unexpectedly succeeded")
	}
	if _, ok := root.Object(); ok {
		t.Error("Object() on a number unexpectedly succeeded")
	}
	if _, ok := root.Array(); ok {
		t.Error("Array() on a number unexpectedly succeeded")
	}
}
