package interp

import "math"

// registerBuiltins populates t with the fixed math/utility function
// table. Names are stored lowercase; statement and expression parsing
// always look functions up by lowercased name.
func registerBuiltins(t *FunctionTable) {
	t.register("timer", 0, func(ctx *Interpreter, _ []Number) Number {
		return Number(ctx.elapsedSeconds())
	})
	t.register("rnd", 0, func(ctx *Interpreter, _ []Number) Number {
		return Number(ctx.rng.Float64())
	})
	t.register("pi", 0, func(_ *Interpreter, _ []Number) Number {
		return Number(math.Pi)
	})
	t.register("int", 1, func(_ *Interpreter, a []Number) Number {
		return Number(math.Trunc(float64(a[0])))
	})
	t.register("abs", 1, func(_ *Interpreter, a []Number) Number {
		return Number(math.Abs(float64(a[0])))
	})
	t.register("sqr", 1, func(_ *Interpreter, a []Number) Number {
		return Number(math.Sqrt(float64(a[0])))
	})
	t.register("sin", 1, func(_ *Interpreter, a []Number) Number {
		return Number(math.Sin(float64(a[0])))
	})
	t.register("cos", 1, func(_ *Interpreter, a []Number) Number {
		return Number(math.Cos(float64(a[0])))
	})
	t.register("rad", 1, func(_ *Interpreter, a []Number) Number {
		return Number(float64(a[0]) * math.Pi / 180)
	})
	t.register("deg", 1, func(_ *Interpreter, a []Number) Number {
		return Number(float64(a[0]) * 180 / math.Pi)
	})
	t.register("min", 2, func(_ *Interpreter, a []Number) Number {
		return Number(math.Min(float64(a[0]), float64(a[1])))
	})
	t.register("max", 2, func(_ *Interpreter, a []Number) Number {
		return Number(math.Max(float64(a[0]), float64(a[1])))
	})
	t.register("mod", 2, func(_ *Interpreter, a []Number) Number {
		// Python-style modulo: the result carries the sign of the
		// divisor, unlike math.Mod (which carries the dividend's sign).
		x, y := float64(a[0]), float64(a[1])
		return Number(x - y*math.Floor(x/y))
	})
	t.register("hypot2", 2, func(_ *Interpreter, a []Number) Number {
		return Number(math.Hypot(float64(a[0]), float64(a[1])))
	})
	t.register("hypot3", 3, func(_ *Interpreter, a []Number) Number {
		x, y, z := float64(a[0]), float64(a[1]), float64(a[2])
		return Number(math.Sqrt(x*x + y*y + z*z))
	})
	t.register("iif", 3, func(_ *Interpreter, a []Number) Number {
		if Truthy(a[0]) {
			return a[1]
		}
		return a[2]
	})
}
