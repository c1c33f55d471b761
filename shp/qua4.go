// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape function of qua4 (bilinear quadrilateral)
//
//        3 --------- 2
//        |     s     |
//        |     |     |
//        |     +--r  |
//        |           |
//        |           |
//        0 --------- 1
//
func init() {
	fcn := func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		R, s := r[0], r[1]

		S[0] = (1.0 - R) * (1.0 - s) / 4.0
		S[1] = (1.0 + R) * (1.0 - s) / 4.0
		S[2] = (1.0 + R) * (1.0 + s) / 4.0
		S[3] = (1.0 - R) * (1.0 + s) / 4.0

		if !derivs {
			return
		}

		dSdR[0][0] = -(1.0 - s) / 4.0
		dSdR[0][1] = -(1.0 - R) / 4.0
		dSdR[1][0] = (1.0 - s) / 4.0
		dSdR[1][1] = -(1.0 + R) / 4.0
		dSdR[2][0] = (1.0 + s) / 4.0
		dSdR[2][1] = (1.0 + R) / 4.0
		dSdR[3][0] = -(1.0 + s) / 4.0
		dSdR[3][1] = (1.0 - R) / 4.0
	}

	nat := [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}

	factory["qua4"] = newShape("qua4", 2, 4, fcn, nat)
}
