package pdfcpudoc

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdfweld/pdfweld/core"
)

// fromPDFCPU translates a pdfcpu object into the core object model.
// Containers are translated recursively, but indirect references stay
// references: callers resolve them on demand against the source file.
func fromPDFCPU(obj types.Object) core.Object {
	switch o := obj.(type) {
	case types.Dict:
		d := core.Dict{}
		for k, v := range o {
			if v == nil {
				d[k] = core.Null{}
				continue
			}
			d[k] = fromPDFCPU(v)
		}
		return d
	case types.Array:
		a := make(core.Array, 0, len(o))
		for _, v := range o {
			if v == nil {
				a = append(a, core.Null{})
				continue
			}
			a = append(a, fromPDFCPU(v))
		}
		return a
	case types.IndirectRef:
		return core.IndirectRef{
			Number:     o.ObjectNumber.Value(),
			Generation: o.GenerationNumber.Value(),
		}
	case types.Name:
		return core.Name(o.Value())
	case types.StringLiteral:
		if b, err := types.Unescape(o.Value()); err == nil {
			return core.String(b)
		}
		return core.String(o.Value())
	case types.HexLiteral:
		if b, err := o.Bytes(); err == nil {
			return core.String(b)
		}
		return core.String(o.Value())
	case types.Integer:
		return core.Int(o.Value())
	case types.Float:
		return core.Real(o.Value())
	case types.Boolean:
		return core.Bool(o.Value())
	case types.StreamDict:
		return fromPDFCPU(o.Dict)
	default:
		return core.Null{}
	}
}
