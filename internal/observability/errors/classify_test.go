package errors

import (
	goerrors "errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type classed struct{}

func (classed) Error() string      { return "classed" }
func (classed) ErrorClass() string { return "store_unavailable" }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "named sentinel", err: classed{}, want: "store_unavailable"},
		{name: "named inside join", err: fmt.Errorf("%w: %w", classed{}, goerrors.New("dial")), want: "store_unavailable"},
		{name: "innermost pointer type", err: fmt.Errorf("op: %w", &net.OpError{Op: "dial"}), want: "net_operror"},
		{name: "plain errors.New", err: goerrors.New("boom"), want: "errors_errorstring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
