package jpegli

// Direct inverse transforms for arbitrary output sizes in [1, 16].
//
// Sizes without a clean power-of-two factorization get a closed-form
// even/odd decomposition instead of the butterfly. Every size follows the
// same pattern: partial sums over the even inputs {0,2,4,6} and the odd
// inputs {1,3,5,7}, each weighted by a signed entry of the per-size cosine
// table, combined as out[j] = even[j]+odd[j], out[n-1-j] = even[j]-odd[j].
// The signed index pattern is cosine quadrant folding, so one shared loop
// driven by precomputed per-size weight matrices serves all sizes.

// kC[n][j] = sqrt2*cos(j*pi/(2n)). Literal reference values; the tests pin
// each entry to the generating formula.
var kC = [17][]float32{
	3: {
		1.414213562373,
		1.224744871392,
		0.707106781187,
	},
	4: {
		1.414213562373,
		1.306562964876,
		1.000000000000,
		0.541196100146,
	},
	5: {
		1.414213562373, 1.344997023928, 1.144122805635,
		0.831253875555, 0.437016024449,
	},
	6: {
		1.414213562373, 1.366025403784, 1.224744871392,
		1.000000000000, 0.707106781187, 0.366025403784,
	},
	7: {
		1.414213562373, 1.378756275744, 1.274162392264, 1.105676685997,
		0.881747733790, 0.613604268353, 0.314692122713,
	},
	8: {
		1.414213562373, 1.387039845322, 1.306562964876, 1.175875602419,
		1.000000000000, 0.785694958387, 0.541196100146, 0.275899379283,
	},
	9: {
		1.414213562373, 1.392728480640, 1.328926048777,
		1.224744871392, 1.083350440839, 0.909038955344,
		0.707106781187, 0.483689525296, 0.245575607938,
	},
	10: {
		1.414213562373, 1.396802246667, 1.344997023928, 1.260073510670,
		1.144122805635, 1.000000000000, 0.831253875555, 0.642039521920,
		0.437016024449, 0.221231742082,
	},
	11: {
		1.414213562373, 1.399818907436, 1.356927976287, 1.286413904599,
		1.189712155524, 1.068791297809, 0.926112931411, 0.764581576418,
		0.587485545401, 0.398430002847, 0.201263574413,
	},
	12: {
		1.414213562373, 1.402114769300, 1.366025403784, 1.306562964876,
		1.224744871392, 1.121971053594, 1.000000000000, 0.860918669154,
		0.707106781187, 0.541196100146, 0.366025403784, 0.184591911283,
	},
	13: {
		1.414213562373, 1.403902353238, 1.373119086479, 1.322312651445,
		1.252223920364, 1.163874944761, 1.058554051646, 0.937797056801,
		0.803364869133, 0.657217812653, 0.501487040539, 0.338443458124,
		0.170464607981,
	},
	14: {
		1.414213562373, 1.405321284327, 1.378756275744, 1.334852607020,
		1.274162392264, 1.197448846138, 1.105676685997, 1.000000000000,
		0.881747733790, 0.752406978226, 0.613604268353, 0.467085128785,
		0.314692122713, 0.158341680609,
	},
	15: {
		1.414213562373, 1.406466352507, 1.383309602960, 1.344997023928,
		1.291948376043, 1.224744871392, 1.144122805635, 1.050965490998,
		0.946293578512, 0.831253875555, 0.707106781187, 0.575212476952,
		0.437016024449, 0.294031532930, 0.147825570407,
	},
	16: {
		1.414213562373, 1.407403737526, 1.387039845322, 1.353318001174,
		1.306562964876, 1.247225012987, 1.175875602419, 1.093201867002,
		1.000000000000, 0.897167586343, 0.785694958387, 0.666655658478,
		0.541196100146, 0.410524527522, 0.275899379283, 0.138617169199,
	},
}

// generalWeights holds the signed table entries one output size applies to
// the even inputs {0,2,4,6} and the odd inputs {1,3,5,7}. Row j produces
// outputs j and n-1-j. even[j][0] is always 1 (the DC input).
type generalWeights struct {
	even [][4]float32
	odd  [][4]float32
}

var generalTables [17]generalWeights

// foldWeight resolves the weight of input u in output j of the n-point
// transform: cos((2j+1)*u*pi/(2n)) folds onto a signed kC[n] entry by
// quadrant symmetry, or to zero when the angle lands on pi/2. Inputs at or
// beyond n do not exist and weigh zero.
func foldWeight(n, j, u int) float32 {
	if u == 0 {
		return 1
	}
	if u >= n {
		return 0
	}

	k := ((2*j + 1) * u) % (4 * n)
	sign := float32(1)
	if k > 2*n {
		k = 4*n - k
	}
	if k > n {
		k = 2*n - k
		sign = -1
	}
	if k == n {
		return 0
	}

	return sign * kC[n][k]
}

func init() {
	for n := range kC {
		if kC[n] == nil {
			continue
		}

		rows := (n + 1) / 2
		w := generalWeights{
			even: make([][4]float32, rows),
			odd:  make([][4]float32, rows),
		}
		for j := 0; j < rows; j++ {
			for m := 0; m < 4; m++ {
				w.even[j][m] = foldWeight(n, j, 2*m)
				w.odd[j][m] = foldWeight(n, j, 2*m+1)
			}
		}

		generalTables[n] = w
	}
}

// idctGeneral1D computes the n-point inverse transform of in, writing n
// outputs. An 8-wide source has no coefficients beyond index 7, so inputs
// 8..n-1 are implicitly zero; for n < 8 the caller must zero in[n:], since
// the shared loop reads all eight lanes.
func idctGeneral1D(in *[8]float32, out []float32, n int) {
	switch n {
	case 1:
		out[0] = in[0]
		return
	case 2:
		out[0] = in[0] + in[1]
		out[1] = in[0] - in[1]
		return
	}

	if n < 1 || n > 16 {
		panic("jpegli: direct transform size out of range [1, 16]")
	}

	w := &generalTables[n]
	half := (n + 1) / 2

	for j := 0; j < half; j++ {
		ev := &w.even[j]
		od := &w.odd[j]

		even := in[0] + ev[1]*in[2] + ev[2]*in[4] + ev[3]*in[6]
		odd := od[0]*in[1] + od[1]*in[3] + od[2]*in[5] + od[3]*in[7]

		// For odd n the midpoint row has j == n-1-j; its odd sum is
		// exactly zero, so the second store rewrites the same value.
		out[j] = even + odd
		out[n-1-j] = even - odd
	}
}
