// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. shape functions and derivatives")

	r := []float64{0.25, -0.4, 0.6}
	for _, geoType := range []string{"qua4", "hex8"} {
		shape := Get(geoType, 0)
		if shape == nil {
			tst.Errorf("cannot get %q shape\n", geoType)
			return
		}
		io.Pfyel("--------------------------------- %-6s---------------------------------\n", geoType)
		CheckShape(tst, shape, 1e-17, chk.Verbose)
		CheckDSdR(tst, shape, r, 1e-7, chk.Verbose)
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. quadrature integrates the element volume")

	// unit square: sum w * J must give the area
	x := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
	shape := Get("qua4", 0)
	for _, nip := range []int{1, 4} {
		ips, err := GetIps("qua4", nip)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		area := 0.0
		for _, ip := range ips {
			err = shape.CalcAtIp(x, ip, true)
			if err != nil {
				tst.Errorf("CalcAtIp failed:\n%v", err)
				return
			}
			area += ip[3] * shape.J
		}
		chk.Scalar(tst, io.Sf("area (nip=%d)", nip), 1e-15, area, 1.0)
	}

	// unit cube
	x = [][]float64{
		{0, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 1, 1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1, 1, 1, 1},
	}
	shape = Get("hex8", 0)
	for _, nip := range []int{1, 8} {
		ips, err := GetIps("hex8", nip)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		vol := 0.0
		for _, ip := range ips {
			err = shape.CalcAtIp(x, ip, true)
			if err != nil {
				tst.Errorf("CalcAtIp failed:\n%v", err)
				return
			}
			vol += ip[3] * shape.J
		}
		chk.Scalar(tst, io.Sf("volume (nip=%d)", nip), 1e-15, vol, 1.0)
	}
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. gradients sum to zero (partition of unity)")

	x := [][]float64{
		{0.0, 1.2, 1.1, -0.1},
		{0.0, 0.1, 1.3, 1.0},
	}
	shape := Get("qua4", 1) // private copy
	ips, err := GetIps("qua4", 4)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	for idx, ip := range ips {
		err = shape.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		for j := 0; j < shape.Gndim; j++ {
			sum := 0.0
			for m := 0; m < shape.Nverts; m++ {
				sum += shape.G[m][j]
			}
			chk.Scalar(tst, io.Sf("ip%d: sum dN/dx_%d", idx, j), 1e-14, sum, 0.0)
		}
	}
}
