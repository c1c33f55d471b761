// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape function of hex8 (trilinear hexahedron)
//
//              4 ________________ 7
//              /|               /|
//             / |              / |
//            /  |             /  |
//         5 /___|___________6/   |
//           |   |           |    |
//           |   |           |    |
//           |   0 __________|____3
//           |   /   t  s    |   /
//           |  /    | /     |  /
//           | /     |/___r  | /
//         1 |/______________|/ 2
//
func init() {
	fcn := func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		R, s, t := r[0], r[1], r[2]

		S[0] = (1.0 - R) * (1.0 - s) * (1.0 - t) / 8.0
		S[1] = (1.0 + R) * (1.0 - s) * (1.0 - t) / 8.0
		S[2] = (1.0 + R) * (1.0 + s) * (1.0 - t) / 8.0
		S[3] = (1.0 - R) * (1.0 + s) * (1.0 - t) / 8.0
		S[4] = (1.0 - R) * (1.0 - s) * (1.0 + t) / 8.0
		S[5] = (1.0 + R) * (1.0 - s) * (1.0 + t) / 8.0
		S[6] = (1.0 + R) * (1.0 + s) * (1.0 + t) / 8.0
		S[7] = (1.0 - R) * (1.0 + s) * (1.0 + t) / 8.0

		if !derivs {
			return
		}

		dSdR[0][0] = -(1.0 - s) * (1.0 - t) / 8.0
		dSdR[0][1] = -(1.0 - R) * (1.0 - t) / 8.0
		dSdR[0][2] = -(1.0 - R) * (1.0 - s) / 8.0
		dSdR[1][0] = (1.0 - s) * (1.0 - t) / 8.0
		dSdR[1][1] = -(1.0 + R) * (1.0 - t) / 8.0
		dSdR[1][2] = -(1.0 + R) * (1.0 - s) / 8.0
		dSdR[2][0] = (1.0 + s) * (1.0 - t) / 8.0
		dSdR[2][1] = (1.0 + R) * (1.0 - t) / 8.0
		dSdR[2][2] = -(1.0 + R) * (1.0 + s) / 8.0
		dSdR[3][0] = -(1.0 + s) * (1.0 - t) / 8.0
		dSdR[3][1] = (1.0 - R) * (1.0 - t) / 8.0
		dSdR[3][2] = -(1.0 - R) * (1.0 + s) / 8.0
		dSdR[4][0] = -(1.0 - s) * (1.0 + t) / 8.0
		dSdR[4][1] = -(1.0 - R) * (1.0 + t) / 8.0
		dSdR[4][2] = (1.0 - R) * (1.0 - s) / 8.0
		dSdR[5][0] = (1.0 - s) * (1.0 + t) / 8.0
		dSdR[5][1] = -(1.0 + R) * (1.0 + t) / 8.0
		dSdR[5][2] = (1.0 + R) * (1.0 - s) / 8.0
		dSdR[6][0] = (1.0 + s) * (1.0 + t) / 8.0
		dSdR[6][1] = (1.0 + R) * (1.0 + t) / 8.0
		dSdR[6][2] = (1.0 + R) * (1.0 + s) / 8.0
		dSdR[7][0] = -(1.0 + s) * (1.0 + t) / 8.0
		dSdR[7][1] = (1.0 - R) * (1.0 + t) / 8.0
		dSdR[7][2] = (1.0 - R) * (1.0 + s) / 8.0
	}

	nat := [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
	}

	factory["hex8"] = newShape("hex8", 3, 8, fcn, nat)
}
