package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamperValidate(t *testing.T) {
	tests := []struct {
		name    string
		camper  Camper
		wantErr bool
	}{
		{name: "valid", camper: Camper{Name: "Alex", Age: 12}, wantErr: false},
		{name: "empty name", camper: Camper{Name: "", Age: 12}, wantErr: true},
		{name: "age below range", camper: Camper{Name: "Alex", Age: 7}, wantErr: true},
		{name: "age above range", camper: Camper{Name: "Alex", Age: 19}, wantErr: true},
		{name: "age lower bound", camper: Camper{Name: "Alex", Age: 8}, wantErr: false},
		{name: "age upper bound", camper: Camper{Name: "Alex", Age: 18}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.camper.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupValidate(t *testing.T) {
	tests := []struct {
		name    string
		time    int
		wantErr bool
	}{
		{name: "midnight", time: 0, wantErr: false},
		{name: "last hour", time: 23, wantErr: false},
		{name: "negative", time: -1, wantErr: true},
		{name: "past midnight", time: 24, wantErr: true},
		{name: "morning", time: 9, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Signup{Time: tt.time, CamperID: 1, ActivityID: 1}
			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
