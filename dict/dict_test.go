package dict

import "testing"

func TestDictSentinelEntry(t *testing.T) {
	if Dict[0].Token != "NIL" || Dict[0].Features != 0 {
		t.Fatalf("Dict[0] must be the NIL sentinel, got %+v", Dict[0])
	}
}

func TestDictFullyPopulated(t *testing.T) {
	for i, e := range Dict {
		if e.Token == "" {
			t.Fatalf("Dict[%d] has an empty token", i)
		}
	}
}

func TestFrameTableDimensions(t *testing.T) {
	if len(Frame) != NFrames {
		t.Fatalf("Frame has %d entries, want %d", len(Frame), NFrames)
	}
	for i, f := range Frame {
		if len(f) != MaxH {
			t.Fatalf("Frame[%d] has %d slots, want %d", i, len(f), MaxH)
		}
	}
}

func TestXlitSlotsAddressValidDictIndices(t *testing.T) {
	for fi, frame := range Frame {
		for si, slot := range frame {
			if slot&XLIT == 0 {
				continue
			}
			idx := slot & 255
			if int(idx) >= MaxDict {
				t.Fatalf("Frame[%d][%d] XLIT slot %#x addresses out-of-range index %d", fi, si, slot, idx)
			}
		}
	}
}
