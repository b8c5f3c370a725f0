package host

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCodecRoundTrip(t *testing.T) {
	codecs := map[string]MessageCodec{
		"json":    JSONCodec{},
		"msgpack": MsgpackCodec{},
	}
	payload := map[string]any{
		"count":  int8(3),
		"label":  "home",
		"$ready": true,
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			encoded, err := codec.Encode(payload)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := codec.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			m, ok := decoded.(map[string]any)
			if !ok {
				t.Fatalf("expected map, got %T", decoded)
			}
			if m["label"] != "home" {
				t.Errorf("expected label preserved, got %v", m["label"])
			}
			if m["$ready"] != true {
				t.Error("expected readiness marker preserved")
			}
		})
	}
}

func TestCodecDecodeEmpty(t *testing.T) {
	for name, codec := range map[string]MessageCodec{"json": JSONCodec{}, "msgpack": MsgpackCodec{}} {
		t.Run(name, func(t *testing.T) {
			decoded, err := codec.Decode(nil)
			if err != nil {
				t.Fatalf("Decode(nil) failed: %v", err)
			}
			if decoded != nil {
				t.Errorf("expected nil for empty payload, got %v", decoded)
			}
		})
	}
}

func TestJSONCodecDecodeInto(t *testing.T) {
	type page struct {
		Title string `json:"title"`
	}
	data, err := JSONCodec{}.Encode(page{Title: "index"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var got page
	if err := (JSONCodec{}).DecodeInto(data, &got); err != nil {
		t.Fatalf("DecodeInto failed: %v", err)
	}
	if diff := cmp.Diff(page{Title: "index"}, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMsgpackCodecDecodeInto(t *testing.T) {
	type page struct {
		Title string `msgpack:"title"`
	}
	data, err := MsgpackCodec{}.Encode(page{Title: "index"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var got page
	if err := (MsgpackCodec{}).DecodeInto(data, &got); err != nil {
		t.Fatalf("DecodeInto failed: %v", err)
	}
	if got.Title != "index" {
		t.Errorf("expected title preserved, got %q", got.Title)
	}
}
