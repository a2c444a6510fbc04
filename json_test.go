package nbt

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/minio/simdjson-go"
)

func requireSIMD(t testing.TB) {
	t.Helper()
	if !simdjson.SupportedCPU() {
		t.Skip("simdjson-go not supported on this CPU")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	requireSIMD(t)
	n := Named{Name: "Level \"1\"\n", Data: sampleTree()}
	js, err := NamedToJSON(n)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	back, err := NamedFromJSON([]byte(js))
	if err != nil {
		t.Fatalf("from json: %v\n%s", err, js)
	}
	if back.Name != n.Name {
		t.Fatalf("name %q, want %q", back.Name, n.Name)
	}
	if !Equal(back.Data, n.Data) {
		t.Fatalf("tree mismatch after json roundtrip:\n%s", js)
	}
}

func TestJSONTagForm(t *testing.T) {
	cases := []struct {
		tag  Tag
		want string
	}{
		{Int(42), `{"type":"Int","value":42}`},
		{ByteArray{1, 2, 3}, `{"type":"ByteArray","value":"AQID"}`},
		{MustList(KindShort, Short(1), Short(-1)), `{"type":"List","value":{"elem":"Short","items":[1,-1]}}`},
		{NewCompound().Set("a", String("x")), `{"type":"Compound","value":[{"name":"a","type":"String","value":"x"}]}`},
		{Double(math.Inf(-1)), `{"type":"Double","value":"-Inf"}`},
		{&List{}, `{"type":"List","value":{"elem":"End","items":[]}}`},
	}
	for _, tc := range cases {
		got, err := ToJSON(tc.tag)
		if err != nil {
			t.Fatalf("%s: %v", tc.want, err)
		}
		if got != tc.want {
			t.Fatalf("got %s, want %s", got, tc.want)
		}
	}
}

func TestJSONParseTags(t *testing.T) {
	requireSIMD(t)
	back, err := FromJSON([]byte(`{"type":"Float","value":"NaN"}`))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if f, ok := back.(Float); !ok || !math.IsNaN(float64(f)) {
		t.Fatalf("got %#v", back)
	}
	back, err = FromJSON([]byte(`{"type":"LongArray","value":[-9223372036854775808, 9223372036854775807]}`))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if !Equal(back, LongArray{math.MinInt64, math.MaxInt64}) {
		t.Fatalf("got %#v", back)
	}
}

func TestJSONRejects(t *testing.T) {
	requireSIMD(t)
	bad := []string{
		`{"type":"Byte","value":128}`,
		`{"type":"Int","value":1.5}`,
		`{"type":"Nope","value":1}`,
		`{"type":"End","value":0}`,
		`{"type":"List","value":{"elem":"Int","items":["x"]}}`,
		`{"type":"Compound","value":[{"type":"Int","value":1}]}`,
		`{"type":"ByteArray","value":"***"}`,
		`[1,2]`,
	}
	for _, in := range bad {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

func TestNamedToJSONOrder(t *testing.T) {
	n := Named{Name: "r", Data: NewCompound().Set("b", Byte(1)).Set("a", Byte(2))}
	js, err := NamedToJSON(n)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if strings.Index(js, `"b"`) > strings.Index(js, `"a"`) {
		t.Fatalf("entry order lost: %s", js)
	}
}

func TestJSONInvalidUTF8String(t *testing.T) {
	js, err := ToJSON(String("\xc0\x80"))
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if want := `{"type":"String","value":"b64:wIA="}`; js != want {
		t.Fatalf("got %s, want %s", js, want)
	}
	if !utf8.ValidString(js) {
		t.Fatalf("json output is not valid UTF-8: %q", js)
	}
}

func TestJSONRawTextRoundTrip(t *testing.T) {
	requireSIMD(t)
	c := NewCompound().
		Set("plain", String("héllo")).
		Set("raw", String("\xc0\x80\xff")).
		Set("\xfekey", Byte(1)).
		Set("marker", String("b64:x"))
	n := Named{Name: "root\xc0", Data: c}
	js, err := NamedToJSON(n)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	if !utf8.ValidString(js) {
		t.Fatalf("json output is not valid UTF-8: %q", js)
	}
	back, err := NamedFromJSON([]byte(js))
	if err != nil {
		t.Fatalf("from json: %v\n%s", err, js)
	}
	if back.Name != n.Name {
		t.Fatalf("name %q, want %q", back.Name, n.Name)
	}
	if !Equal(back.Data, n.Data) {
		t.Fatalf("tree mismatch after json roundtrip:\n%s", js)
	}
}
