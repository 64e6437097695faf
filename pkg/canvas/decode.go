package canvas

import (
	"bytes"
	"coursesearch/pkg/serrors"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// jsonPrefix is prepended by Canvas to JSON bodies to defeat JSON hijacking.
var jsonPrefix = []byte("while(1);") //nolint: gochecknoglobals

// StripJSONPrefix removes the anti-hijacking prefix, if present.
func StripJSONPrefix(b []byte) []byte {
	return bytes.TrimPrefix(bytes.TrimLeft(b, " \t\r\n"), jsonPrefix)
}

// Body is a decoded Canvas response: either a collection or a single object.
type Body struct {
	Items   []json.RawMessage
	Object  json.RawMessage
	IsArray bool
}

// DecodeBody strips the anti-hijacking prefix and splits the body into its
// top-level elements. Anything other than an array or an object is reported
// as ErrMalformed.
func DecodeBody(b []byte) (Body, error) {
	d := jx.DecodeBytes(StripJSONPrefix(b))

	switch d.Next() {
	case jx.Array:
		items, err := decodeArray(d)
		if err != nil {
			return Body{}, serrors.Wrap(serrors.ErrMalformed, err, "could not decode collection")
		}

		return Body{Items: items, IsArray: true}, nil
	case jx.Object:
		raw, err := d.Raw()
		if err != nil {
			return Body{}, serrors.Wrap(serrors.ErrMalformed, errors.Wrap(err, "raw"), "could not decode object")
		}

		return Body{Object: append(json.RawMessage(nil), raw...)}, nil
	default:
		return Body{}, serrors.With(serrors.ErrMalformed, "response is neither a JSON array nor an object")
	}
}

// DecodeEvents extracts the events array of an audit log page, shaped
// {"events": [...], "linked": {...}}.
func DecodeEvents(b []byte) ([]json.RawMessage, error) {
	d := jx.DecodeBytes(StripJSONPrefix(b))
	if d.Next() != jx.Object {
		return nil, serrors.With(serrors.ErrMalformed, "audit response is not a JSON object")
	}

	var events []json.RawMessage
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "events" || d.Next() != jx.Array {
			return d.Skip()
		}
		items, err := decodeArray(d)
		if err != nil {
			return errors.Wrap(err, "events")
		}
		events = items

		return nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformed, err, "could not decode audit events")
	}

	return events, nil
}

func decodeArray(d *jx.Decoder) ([]json.RawMessage, error) {
	items := make([]json.RawMessage, 0, PageSize)
	err := d.Arr(func(d *jx.Decoder) error {
		raw, err := d.Raw()
		if err != nil {
			return errors.Wrap(err, "element")
		}
		items = append(items, append(json.RawMessage(nil), raw...))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "array")
	}

	return items, nil
}
