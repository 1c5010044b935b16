package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type body struct {
		Repeats Optional[int] `json:"repeats"`
	}
	four := 4

	tests := []struct {
		name    string
		payload string
		want    Optional[int]
		wantErr bool
	}{
		{name: "absent", payload: `{}`, want: Optional[int]{}},
		{name: "null", payload: `{"repeats":null}`, want: Null[int]()},
		{name: "value", payload: `{"repeats":4}`, want: Optional[int]{Set: true, Value: &four}},
		{name: "wrong type", payload: `{"repeats":"weekly"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			err := json.Unmarshal([]byte(tt.payload), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Repeats)
			assert.Equal(t, tt.want.column(), b.Repeats.column())
		})
	}
}
