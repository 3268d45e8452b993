// Package decode turns loosely specified JSON documents into typed values.
//
// Each target type lists its fields explicitly by implementing DecodeFields.
// Decoding is best-effort: a field whose value has the wrong shape is left
// unset and reported as a Warning, while the rest of the document is still
// decoded. Keys the type does not ask for are ignored.
//
//	type Wind struct {
//		Speed *float64
//		Gusts []Gust
//	}
//
//	func (w *Wind) DecodeFields(o *decode.Object) {
//		w.Speed = o.Float("speed")
//		w.Gusts = decode.List[Gust](o, "gusts")
//	}
//
//	root, err := decode.Parse(body)
//	wind, warnings := decode.Value[Wind](root)
package decode
