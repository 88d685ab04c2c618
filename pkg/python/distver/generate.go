// Copyright (C) 2026  The Uncertainty Quantification Foundation
//
// SPDX-License-Identifier: BSD-3-Clause

package distver

import (
	"fmt"
	"math/rand"
	"reflect"
)

func randBool(rand *rand.Rand) bool {
	return rand.Intn(2) == 1
}

func randSeg(rand *rand.Rand) int {
	return rand.Intn(3000)
}

func bound(low, val, high int) int {
	if val < low {
		val = low
	}
	if val > high {
		val = high
	}
	return val
}

func (ver Version) generate(rand *rand.Rand, size int) Version {
	ver.Release = make([]int, 1+rand.Intn(bound(1, size, 6)))
	for i := range ver.Release {
		ver.Release[i] = randSeg(rand)
	}
	if randBool(rand) {
		n := randSeg(rand)
		ver.Dev = &n
		if randBool(rand) {
			// Date stamps only occur on development releases.
			ver.Date = fmt.Sprintf("%04d%02d%02d",
				1997+rand.Intn(40), 1+rand.Intn(12), 1+rand.Intn(28))
		}
	}
	return ver
}

// Generate implements testing/quick.Generator.
func (ver Version) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(ver.generate(rand, size))
}
