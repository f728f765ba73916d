package css

import "strings"

// TransformFuncKind selects which transform-function variant a TransformFunc
// holds (spec.md §4.3: translate/scale/rotate/skew/matrix).
type TransformFuncKind int

const (
	TransformTranslate TransformFuncKind = iota
	TransformScale
	TransformRotate
	TransformSkew
	TransformMatrix
)

// TransformFunc is one entry of a `transform` property's function list.
type TransformFunc struct {
	Kind      TransformFuncKind
	Translate SpacePair[LengthUnit]
	ScaleXY   SpacePair[float64]
	Rotate    Angle
	SkewXY    SpacePair[Angle]
	Matrix    Affine
}

// ToAffine resolves one transform function to its matrix form. Percentage
// translations on both axes resolve against ctx.PercentBasisPx.
func (f TransformFunc) ToAffine(ctx ResolveContext) Affine {
	switch f.Kind {
	case TransformTranslate:
		xctx, yctx := ctx, ctx
		tx := f.Translate.X.Resolve(xctx)
		ty := f.Translate.Y.Resolve(yctx)
		return Translation(tx, ty)
	case TransformScale:
		return Scale(f.ScaleXY.X, f.ScaleXY.Y)
	case TransformRotate:
		return Rotation(f.Rotate.Degrees)
	case TransformSkew:
		return Skew(f.SkewXY.X.Degrees, f.SkewXY.Y.Degrees)
	case TransformMatrix:
		return f.Matrix
	default:
		return Identity()
	}
}

// TransformList is the full ordered function list of a `transform` property;
// ComposeAffine multiplies it left to right, matching CSS's application order
// (the last function is applied to a point first, i.e. innermost).
type TransformList []TransformFunc

// ComposeAffine folds the list into a single matrix.
func (list TransformList) ComposeAffine(ctx ResolveContext) Affine {
	m := Identity()
	for _, f := range list {
		m = m.Multiply(f.ToAffine(ctx))
	}
	return m
}

// ParseTransformList parses the `transform` property's function list, e.g.
// "translate(10px, 20px) rotate(45deg) scale(1.5)".
func ParseTransformList(value string) (TransformList, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return nil, nil
	}
	var list TransformList
	for _, call := range splitFunctionCalls(value) {
		name, args, ok := splitFunction(call)
		if !ok {
			return nil, &ParseError{Token: call, Msg: "expected a transform function"}
		}
		fn, err := parseTransformFunc(name, args)
		if err != nil {
			return nil, err
		}
		list = append(list, fn)
	}
	return list, nil
}

// splitFunctionCalls splits a whitespace-separated sequence of `name(args)`
// calls, respecting parenthesis nesting so args containing spaces stay
// together.
func splitFunctionCalls(value string) []string {
	var calls []string
	depth := 0
	start := -1
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '(':
			if depth == 0 {
				if start < 0 {
					start = lastIdentStart(value, i)
				}
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				calls = append(calls, value[start:i+1])
				start = -1
			}
		}
	}
	return calls
}

func lastIdentStart(s string, parenIdx int) int {
	i := parenIdx
	for i > 0 && isIdentChar(s[i-1]) {
		i--
	}
	return i
}

func parseTransformFunc(name, args string) (TransformFunc, error) {
	parts := splitTopLevelCommas(args)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch name {
	case "translate", "translateX", "translateY":
		var x, y LengthUnit
		switch name {
		case "translateX":
			lx, err := ParseLength(parts[0])
			if err != nil {
				return TransformFunc{}, err
			}
			x, y = lx, ZeroLength()
		case "translateY":
			ly, err := ParseLength(parts[0])
			if err != nil {
				return TransformFunc{}, err
			}
			x, y = ZeroLength(), ly
		default:
			lx, err := ParseLength(parts[0])
			if err != nil {
				return TransformFunc{}, err
			}
			x = lx
			y = ZeroLength()
			if len(parts) > 1 {
				ly, err := ParseLength(parts[1])
				if err != nil {
					return TransformFunc{}, err
				}
				y = ly
			}
		}
		return TransformFunc{Kind: TransformTranslate, Translate: SpacePair[LengthUnit]{X: x, Y: y}}, nil
	case "scale", "scaleX", "scaleY":
		sx, err := ParsePercentageNumber(parts[0])
		if err != nil {
			return TransformFunc{}, err
		}
		sy := sx
		switch name {
		case "scaleX":
			return TransformFunc{Kind: TransformScale, ScaleXY: SpacePair[float64]{X: sx.Value, Y: 1}}, nil
		case "scaleY":
			return TransformFunc{Kind: TransformScale, ScaleXY: SpacePair[float64]{X: 1, Y: sx.Value}}, nil
		default:
			if len(parts) > 1 {
				sy, err = ParsePercentageNumber(parts[1])
				if err != nil {
					return TransformFunc{}, err
				}
			}
			return TransformFunc{Kind: TransformScale, ScaleXY: SpacePair[float64]{X: sx.Value, Y: sy.Value}}, nil
		}
	case "rotate":
		a, err := ParseAngle(parts[0])
		if err != nil {
			return TransformFunc{}, err
		}
		return TransformFunc{Kind: TransformRotate, Rotate: a}, nil
	case "skew", "skewX", "skewY":
		var x, y Angle
		switch name {
		case "skewX":
			ax, err := ParseAngle(parts[0])
			if err != nil {
				return TransformFunc{}, err
			}
			x = ax
		case "skewY":
			ay, err := ParseAngle(parts[0])
			if err != nil {
				return TransformFunc{}, err
			}
			y = ay
		default:
			ax, err := ParseAngle(parts[0])
			if err != nil {
				return TransformFunc{}, err
			}
			x = ax
			if len(parts) > 1 {
				ay, err := ParseAngle(parts[1])
				if err != nil {
					return TransformFunc{}, err
				}
				y = ay
			}
		}
		return TransformFunc{Kind: TransformSkew, SkewXY: SpacePair[Angle]{X: x, Y: y}}, nil
	case "matrix":
		if len(parts) != 6 {
			return TransformFunc{}, &ParseError{Token: args, Msg: "matrix() requires 6 values"}
		}
		nums := make([]float64, 6)
		for i, p := range parts {
			n, err := ParsePercentageNumber(p)
			if err != nil {
				return TransformFunc{}, err
			}
			nums[i] = n.Value
		}
		return TransformFunc{Kind: TransformMatrix, Matrix: Affine{A: nums[0], B: nums[1], C: nums[2], D: nums[3], E: nums[4], F: nums[5]}}, nil
	default:
		return TransformFunc{}, &ParseError{Token: name, Msg: "unknown transform function"}
	}
}

// TransformOrigin is the transform-origin property value: the point, in the
// box's own coordinates, that transforms are applied around.
type TransformOrigin struct {
	X, Y LengthUnit
}

// ParseTransformOrigin parses a transform-origin value, defaulting a missing
// axis to 50% (center), matching CSS's default origin.
func ParseTransformOrigin(value string) (TransformOrigin, error) {
	pair, err := ParsePosition(value)
	if err != nil {
		return TransformOrigin{}, err
	}
	return TransformOrigin{X: pair.X, Y: pair.Y}, nil
}
