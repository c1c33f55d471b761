// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Ipoint holds integration point data: natural coordinates and weight: {r, s, t, w}
type Ipoint []float64

// gauss point coordinate for 2-point rules
var gp2 = 1.0 / math.Sqrt(3.0)

// ipsFactory holds integration point sets: "geoType_nip" => set
var ipsFactory = map[string][]Ipoint{

	"qua4_1": []Ipoint{
		{0, 0, 0, 4},
	},

	"qua4_4": []Ipoint{
		{-gp2, -gp2, 0, 1},
		{gp2, -gp2, 0, 1},
		{-gp2, gp2, 0, 1},
		{gp2, gp2, 0, 1},
	},

	"hex8_1": []Ipoint{
		{0, 0, 0, 8},
	},

	"hex8_8": []Ipoint{
		{-gp2, -gp2, -gp2, 1},
		{gp2, -gp2, -gp2, 1},
		{-gp2, gp2, -gp2, 1},
		{gp2, gp2, -gp2, 1},
		{-gp2, -gp2, gp2, 1},
		{gp2, -gp2, gp2, 1},
		{-gp2, gp2, gp2, 1},
		{gp2, gp2, gp2, 1},
	},
}

// GetIps returns a set of integration points
//  nip -- number of integration points; 0 means the default full rule
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	if nip == 0 {
		switch geoType {
		case "qua4":
			nip = 4
		case "hex8":
			nip = 8
		}
	}
	ips, ok := ipsFactory[io.Sf("%s_%d", geoType, nip)]
	if !ok {
		err = chk.Err("cannot get integration points for %q with nip=%d", geoType, nip)
	}
	return
}

// GetIpsReduced returns the reduced (under-integration) rule used by the pressure term
func GetIpsReduced(geoType string) (ips []Ipoint, err error) {
	return GetIps(geoType, 1)
}
