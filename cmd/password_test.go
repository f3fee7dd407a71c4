package cmd

import (
	"testing"

	"github.com/kasuboski/episodez/pkg/password"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedClasses(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		configured []string
		want       []password.Class
	}{
		{name: "default", want: password.AllClasses()},
		{name: "all", args: []string{"-a", "--numbers"}, want: password.AllClasses()},
		{name: "numbers", args: []string{"--numbers"}, want: []password.Class{password.Numbers}},
		{name: "flag order does not matter", args: []string{"--special", "--lowercase"}, want: []password.Class{password.Lowercase, password.Special}},
		{name: "configured", configured: []string{"uppercase"}, want: []password.Class{password.Uppercase}},
		{name: "flags win over configuration", args: []string{"--numbers"}, configured: []string{"uppercase"}, want: []password.Class{password.Numbers}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			addClassFlags(cmd)
			require.NoError(t, cmd.Flags().Parse(tt.args))

			got, err := selectedClasses(cmd, tt.configured)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectedClassesUnknownConfigured(t *testing.T) {
	cmd := &cobra.Command{}
	addClassFlags(cmd)

	_, err := selectedClasses(cmd, []string{"emoji"})
	assert.ErrorIs(t, err, password.ErrUnknownClass)
}
