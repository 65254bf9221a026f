// Package loads implements the load-combination generator of spec §4.10
// (Component J): a plain data transform from unfactored per-pile load
// components to the ASCE 7-22 LRFD and ASD combination lists, each
// producing (V_comp, V_tens, H_lat, M_ground). No direct teacher analogue
// (gofem has no load-combination concept); expressed in the teacher's
// plain-struct-in/struct-out style rather than any kind of expression
// evaluator, since the combination set is fixed and small.
package loads

// Method selects which combination family load_combinations produces.
type Method int

const (
	LRFD Method = iota
	ASD
	Both
)

// Input bundles the unfactored per-pile load components of spec §3's
// LoadInput.
type Input struct {
	Dead           float64
	Live           float64
	Snow           float64
	WindDown       float64
	WindUp         float64
	WindLateral    float64
	WindMoment     float64
	SeismicVertical float64
	SeismicLateral  float64
	SeismicMoment   float64
	LeverArmFt      float64
}

// Case is the load-combination case shape of spec §6: {name, V_comp,
// V_tens, H_lat, M_ground}.
type Case struct {
	Name   string
	VComp  float64
	VTens  float64
	HLat   float64
	MGround float64
}

// Result holds the requested combination lists, spec §6 entry point 5.
type Result struct {
	LRFD []Case
	ASD  []Case
}

// Combinations implements spec §6 entry point 5, load_combinations.
func Combinations(in Input, method Method) Result {
	var res Result
	if method == LRFD || method == Both {
		res.LRFD = lrfdCases(in)
		tagGoverning(res.LRFD)
	}
	if method == ASD || method == Both {
		res.ASD = asdCases(in)
		tagGoverning(res.ASD)
	}
	return res
}

// mGround combines the lateral-load moment arm contribution with a
// directly-applied moment component, both already factored, per spec §6:
// "M_ground = H_lat*lever_arm + W_moment_factored."
func mGround(hLat, leverArmFt, appliedMomentFactored float64) float64 {
	return hLat*leverArmFt + appliedMomentFactored
}

func lrfdCases(in Input) []Case {
	la := in.LeverArmFt
	cases := []Case{
		{Name: "1.4D", VComp: 1.4 * in.Dead, HLat: 0, MGround: 0},
		{Name: "1.2D+1.6L+0.5S", VComp: 1.2*in.Dead + 1.6*in.Live + 0.5*in.Snow},
		{Name: "1.2D+1.6S+0.5W_down", VComp: 1.2*in.Dead + 1.6*in.Snow + 0.5*in.WindDown},
	}

	w := 1.0 * in.WindLateral
	wm := 1.0 * in.WindMoment
	cases = append(cases,
		Case{
			Name:    "1.2D+1.0W+L+0.5S (down)",
			VComp:   1.2*in.Dead + in.WindDown + in.Live + 0.5*in.Snow,
			HLat:    w,
			MGround: mGround(w, la, wm),
		},
		Case{
			Name:    "1.2D+1.0W+L+0.5S (up)",
			VTens:   in.WindUp - (1.2*in.Dead + in.Live + 0.5*in.Snow),
			HLat:    w,
			MGround: mGround(w, la, wm),
		},
	)

	e := 1.0 * in.SeismicLateral
	em := 1.0 * in.SeismicMoment
	cases = append(cases,
		Case{
			Name:    "1.2D+1.0E+L+0.2S (down)",
			VComp:   1.2*in.Dead + in.SeismicVertical + in.Live + 0.2*in.Snow,
			HLat:    e,
			MGround: mGround(e, la, em),
		},
		Case{
			Name:    "1.2D+1.0E+L+0.2S (up)",
			VComp:   1.2*in.Dead - in.SeismicVertical + in.Live + 0.2*in.Snow,
			HLat:    e,
			MGround: mGround(e, la, em),
		},
	)

	vTensUplift := in.WindUp - 0.9*in.Dead
	uplift := Case{
		Name:    "0.9D+1.0W",
		VTens:   vTensUplift,
		HLat:    w,
		MGround: mGround(w, la, wm),
	}
	if vTensUplift > 0 {
		uplift.Name = "0.9D+1.0W (UPLIFT)"
	}
	cases = append(cases, uplift)

	cases = append(cases, Case{
		Name:    "0.9D+1.0E",
		VTens:   in.SeismicVertical - 0.9*in.Dead,
		HLat:    e,
		MGround: mGround(e, la, em),
	})

	return normalizeSigns(cases)
}

func asdCases(in Input) []Case {
	la := in.LeverArmFt
	w := in.WindLateral
	wm := in.WindMoment
	e := 0.7 * in.SeismicLateral
	em := 0.7 * in.SeismicMoment

	cases := []Case{
		{Name: "D", VComp: in.Dead},
		{Name: "D+L", VComp: in.Dead + in.Live},
		{Name: "D+S", VComp: in.Dead + in.Snow},
		{Name: "D+0.75(L+S)", VComp: in.Dead + 0.75*(in.Live+in.Snow)},
		{
			Name:    "D+0.6W (down)",
			VComp:   in.Dead + 0.6*in.WindDown,
			HLat:    0.6 * w,
			MGround: mGround(0.6*w, la, 0.6*wm),
		},
		{
			Name:    "D+0.6W (up)",
			VTens:   0.6*in.WindUp - in.Dead,
			HLat:    0.6 * w,
			MGround: mGround(0.6*w, la, 0.6*wm),
		},
		{
			Name:    "D+0.75*0.6W+0.75L+0.75S (down)",
			VComp:   in.Dead + 0.75*0.6*in.WindDown + 0.75*in.Live + 0.75*in.Snow,
			HLat:    0.75 * 0.6 * w,
			MGround: mGround(0.75*0.6*w, la, 0.75*0.6*wm),
		},
		{
			Name:    "D+0.75*0.6W+0.75L+0.75S (up)",
			VTens:   0.75*0.6*in.WindUp - (in.Dead + 0.75*in.Live + 0.75*in.Snow),
			HLat:    0.75 * 0.6 * w,
			MGround: mGround(0.75*0.6*w, la, 0.75*0.6*wm),
		},
		{
			Name:    "0.6D+0.6W (down)",
			VComp:   0.6*in.Dead + 0.6*in.WindDown,
			HLat:    0.6 * w,
			MGround: mGround(0.6*w, la, 0.6*wm),
		},
		{
			Name:    "0.6D+0.6W (up)",
			VTens:   0.6*in.WindUp - 0.6*in.Dead,
			HLat:    0.6 * w,
			MGround: mGround(0.6*w, la, 0.6*wm),
		},
		{
			Name:    "D+0.7E (down)",
			VComp:   in.Dead + 0.7*in.SeismicVertical,
			HLat:    e,
			MGround: mGround(e, la, em),
		},
		{
			Name:    "D+0.7E (up)",
			VComp:   in.Dead - 0.7*in.SeismicVertical,
			HLat:    e,
			MGround: mGround(e, la, em),
		},
		{
			Name:    "D+0.75(0.7E)+0.75L+0.75S (down)",
			VComp:   in.Dead + 0.75*0.7*in.SeismicVertical + 0.75*in.Live + 0.75*in.Snow,
			HLat:    0.75 * e,
			MGround: mGround(0.75*e, la, 0.75*em),
		},
		{
			Name:    "D+0.75(0.7E)+0.75L+0.75S (up)",
			VComp:   in.Dead - 0.75*0.7*in.SeismicVertical + 0.75*in.Live + 0.75*in.Snow,
			HLat:    0.75 * e,
			MGround: mGround(0.75*e, la, 0.75*em),
		},
		{
			Name:    "0.6D+0.7E (down)",
			VComp:   0.6*in.Dead + 0.7*in.SeismicVertical,
			HLat:    e,
			MGround: mGround(e, la, em),
		},
		{
			Name:    "0.6D+0.7E (up)",
			VComp:   0.6*in.Dead - 0.7*in.SeismicVertical,
			HLat:    e,
			MGround: mGround(e, la, em),
		},
	}
	return normalizeSigns(cases)
}

// normalizeSigns splits any VComp that came out negative into VTens (and
// vice versa), keeping V_comp positive-compression and V_tens
// positive-tension per spec §6's field convention.
func normalizeSigns(cases []Case) []Case {
	for i := range cases {
		c := &cases[i]
		if c.VComp < 0 {
			c.VTens += -c.VComp
			c.VComp = 0
		}
		if c.VTens < 0 {
			c.VComp += -c.VTens
			c.VTens = 0
		}
	}
	return cases
}

// tagGoverning appends "(governs compression)"/"(governs uplift)" to the
// strict maxima of V_comp and V_tens, per spec §4.10.
func tagGoverning(cases []Case) {
	if len(cases) == 0 {
		return
	}
	maxC, maxT := 0, 0
	for i := range cases {
		if cases[i].VComp > cases[maxC].VComp {
			maxC = i
		}
		if cases[i].VTens > cases[maxT].VTens {
			maxT = i
		}
	}
	if cases[maxC].VComp > 0 {
		cases[maxC].Name += " (governs compression)"
	}
	if cases[maxT].VTens > 0 {
		cases[maxT].Name += " (governs uplift)"
	}
}
