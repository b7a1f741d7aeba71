package rc

import (
	"io"
	"reflect"
)

// dispose is the release action used when no deleter is supplied and for
// values constructed in place. Values whose pointer implements io.Closer are
// closed; anything else is left to the garbage collector.
func dispose[T any](p *T) {
	c, ok := any(p).(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		Logger().Error(err, "closing managed object", "type", typeName[T]())
	}
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
