// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sps

import "testing"

func TestGUIDStringCanonicalRoundTrip(t *testing.T) {
	tests := []string{
		"f29f85e0-4ff9-1068-ab91-08002b27b3d9",
		"d5cdd505-2e9c-101b-9397-08002b2cf9ae",
		"d5cdd502-2e9c-101b-9397-08002b2cf9ae",
	}

	for _, canon := range tests {
		g := guidFromCanonical(canon)
		if got := g.String(); got != canon {
			t.Errorf("guidFromCanonical(%q).String() = %q, want %q", canon, got, canon)
		}
	}
}

func TestFMTIDName(t *testing.T) {
	tests := []struct {
		id   GUID
		want string
	}{
		{SummaryInformationFMTID, "Summary Information"},
		{DocumentSummaryInformationFMTID, "Document Summary Information"},
		{NamedPropertiesFMTID, "Named Properties / User Defined Properties"},
		{GUID{}, ""},
	}

	for _, tt := range tests {
		if got := FMTIDName(tt.id); got != tt.want {
			t.Errorf("FMTIDName(%s) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
