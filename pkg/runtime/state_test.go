package runtime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShallowEqualProps(t *testing.T) {
	tests := []struct {
		name string
		a, b Props
		want bool
	}{
		{"both empty", Props{}, Props{}, true},
		{"nil vs empty", nil, Props{}, true},
		{"same keys and values", Props{"a": 1, "b": "x"}, Props{"a": 1, "b": "x"}, true},
		{"one differing value", Props{"a": 1, "b": 2}, Props{"a": 1, "b": 3}, false},
		{"missing key", Props{"a": 1, "b": 2}, Props{"a": 1}, false},
		{"extra key", Props{"a": 1}, Props{"a": 1, "b": 2}, false},
		{"nil values equal", Props{"a": nil}, Props{"a": nil}, true},
		{"uncomparable values never equal", Props{"a": []int{1}}, Props{"a": []int{1}}, false},
		{"different dynamic types", Props{"a": 1}, Props{"a": int64(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shallowEqualProps(tt.a, tt.b); got != tt.want {
				t.Errorf("shallowEqualProps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCloneStateIsShallowAndDetached(t *testing.T) {
	orig := State{"a": 1, "b": []int{1, 2}}
	clone := cloneState(orig)

	clone["a"] = 2
	if orig["a"] != 1 {
		t.Error("expected clone writes not to touch the original")
	}
	if diff := cmp.Diff([]int{1, 2}, clone["b"]); diff != "" {
		t.Errorf("expected shared nested value (-want +got):\n%s", diff)
	}

	var nilState State
	if c := cloneState(nilState); c == nil || len(c) != 0 {
		t.Error("expected nil state to clone to an empty mergeable map")
	}
}

func TestMergeStateOverwrites(t *testing.T) {
	dst := State{"a": 1, "b": 2}
	mergeState(dst, State{"b": 3, "c": 4})

	want := State{"a": 1, "b": 3, "c": 4}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestPhaseString(t *testing.T) {
	names := map[Phase]string{
		PhaseWillMount:        "willMount",
		PhaseDidMount:         "didMount",
		PhaseWillReceiveProps: "willReceiveProps",
		PhaseWillUpdate:       "willUpdate",
		PhaseDidUpdate:        "didUpdate",
		PhaseWillUnmount:      "willUnmount",
		PhaseShow:             "onShow",
		PhaseHide:             "onHide",
		Phase(99):             "unknown",
	}
	for phase, want := range names {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
