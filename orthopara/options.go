package orthopara

//Options contains the J bounds used by Estimate.
type Options struct {
	jmin int
	jmax int
}

//DefaultOptions returns the bounds normally used for shock models,
//J=2 to J=8. J=0 and J=1 are left out, as they keep most of their pre-shock population.
func DefaultOptions() *Options {
	r := new(Options)
	r.jmin = 2
	r.jmax = 8
	return r
}

//JMin returns the lowest rotational level included in the estimation,
//and sets it to a new value, if given.
func (O *Options) JMin(n ...int) int {
	if len(n) > 0 {
		O.jmin = n[0]
	}
	return O.jmin
}

//JMax returns the highest rotational level included in the estimation,
//and sets it to a new value, if given. It must be even.
func (O *Options) JMax(n ...int) int {
	if len(n) > 0 {
		O.jmax = n[0]
	}
	return O.jmax
}
