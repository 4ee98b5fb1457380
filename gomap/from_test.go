package gomap

import (
	"errors"
	"testing"

	"github.com/gon-format/gon/ir"
	"github.com/gon-format/gon/parse"
)

type color int

const (
	valueA color = iota
	valueB
	valueC
)

var colors = map[string]color{
	"ValueA": valueA,
	"ValueB": valueB,
	"ValueC": valueC,
}

type example struct {
	A int32
	B color
}

func (e *example) FromGon(node *ir.Node) error {
	a, err := Field(node, "a", Int[int32])
	if err != nil {
		return err
	}
	b, err := Field(node, "b", func(n *ir.Node) (color, error) {
		return Variant(n, colors)
	})
	if err != nil {
		return err
	}
	e.A = a
	e.B = b
	return nil
}

func TestFromGon(t *testing.T) {
	node, err := parse.Parse([]byte("\na 5\nb ValueB\n"))
	if err != nil {
		t.Fatal(err)
	}
	e := &example{}
	if err := e.FromGon(node); err != nil {
		t.Fatal(err)
	}
	if e.A != 5 || e.B != valueB {
		t.Errorf("got %+v", e)
	}
}

func TestFromGonMissingField(t *testing.T) {
	node, err := parse.Parse([]byte("a 5"))
	if err != nil {
		t.Fatal(err)
	}
	e := &example{}
	err = e.FromGon(node)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v", err)
	}
	if missing.Field != "b" {
		t.Errorf("got field %q", missing.Field)
	}
}

func TestVariantUnrecognized(t *testing.T) {
	node, err := parse.Parse([]byte("a 5\nb ValueX"))
	if err != nil {
		t.Fatal(err)
	}
	err = (&example{}).FromGon(node)
	var variant *VariantError
	if !errors.As(err, &variant) {
		t.Fatalf("got %v", err)
	}
	if variant.Name != "ValueX" {
		t.Errorf("got %q", variant.Name)
	}
}

func TestScalars(t *testing.T) {
	if v, err := Int[int8](ir.FromString("-12")); err != nil || v != -12 {
		t.Errorf("got %d, %v", v, err)
	}
	if _, err := Int[int8](ir.FromString("1000")); err == nil {
		t.Error("expected range error")
	}
	if v, err := Uint[uint16](ir.FromString("65535")); err != nil || v != 65535 {
		t.Errorf("got %d, %v", v, err)
	}
	if _, err := Uint[uint8](ir.FromString("-1")); err == nil {
		t.Error("expected error")
	}
	if v, err := Float[float32](ir.FromString("123.456")); err != nil || v != 123.456 {
		t.Errorf("got %v, %v", v, err)
	}
	if v, err := Bool(ir.FromString("true")); err != nil || !v {
		t.Errorf("got %v, %v", v, err)
	}
	if v, err := String(ir.FromString("10")); err != nil || v != "10" {
		t.Errorf("got %q, %v", v, err)
	}

	var scalar *ScalarError
	_, err := Int[int](ir.FromString("ten"))
	if !errors.As(err, &scalar) {
		t.Fatalf("got %v", err)
	}
	if scalar.Value != "ten" {
		t.Errorf("got %q", scalar.Value)
	}
}

func TestShapeErrs(t *testing.T) {
	obj, _ := ir.FromPairs([]ir.KeyVal{{Key: "a", Val: ir.FromString("1")}})
	arr := ir.FromSlice([]*ir.Node{ir.FromString("1")})
	val := ir.FromString("1")

	if _, err := Int[int](obj); !errors.Is(err, ErrExpectedValue) {
		t.Errorf("got %v", err)
	}
	if _, err := String(arr); !errors.Is(err, ErrExpectedValue) {
		t.Errorf("got %v", err)
	}
	if _, err := Slice(val, Int[int]); !errors.Is(err, ErrExpectedArray) {
		t.Errorf("got %v", err)
	}
	if _, err := Slice(obj, Int[int]); !errors.Is(err, ErrExpectedArray) {
		t.Errorf("got %v", err)
	}
	if _, err := Map(arr, String); !errors.Is(err, ErrExpectedObject) {
		t.Errorf("got %v", err)
	}
	if _, err := Field(val, "a", String); !errors.Is(err, ErrExpectedObject) {
		t.Errorf("got %v", err)
	}
}

func TestFixedArity(t *testing.T) {
	node, err := parse.Parse([]byte("[1 2]"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Fixed(node, 3, Int[int])
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("got %v", err)
	}
	if arity.Expected != 3 || arity.Found != 2 {
		t.Errorf("got %+v", arity)
	}

	got, err := Fixed(node, 2, Int[int])
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("got %v", got)
	}
}

func TestSliceMap(t *testing.T) {
	node, err := parse.Parse([]byte("counts [10 15 4 1] names {a x b y}"))
	if err != nil {
		t.Fatal(err)
	}
	counts, err := Field(node, "counts", func(n *ir.Node) ([]int, error) {
		return Slice(n, Int[int])
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 4 || counts[1] != 15 {
		t.Errorf("got %v", counts)
	}
	names, err := Field(node, "names", func(n *ir.Node) (map[string]string, error) {
		return Map(n, String)
	})
	if err != nil {
		t.Fatal(err)
	}
	if names["a"] != "x" || names["b"] != "y" {
		t.Errorf("got %v", names)
	}

	// element failures propagate, no partial success
	bad, err := parse.Parse([]byte("[1 two 3]"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Slice(bad, Int[int]); err == nil {
		t.Error("expected error")
	}
}
