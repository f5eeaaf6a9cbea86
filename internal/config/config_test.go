package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("TANKBOARD_TEST_DIR", "/srv/tankboard")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty stays empty", in: "", want: ""},
		{name: "absolute untouched", in: "/var/lib/audit.db", want: "/var/lib/audit.db"},
		{name: "tilde prefix", in: "~/audit.db", want: filepath.Join(home, "audit.db")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$TANKBOARD_TEST_DIR/audit.db", want: "/srv/tankboard/audit.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestAuditDBPath(t *testing.T) {
	t.Run("configured path wins", func(t *testing.T) {
		viper.Set("audit.db_path", "/tmp/custom-audit.db")
		defer viper.Set("audit.db_path", "")

		assert.Equal(t, "/tmp/custom-audit.db", AuditDBPath())
	})

	t.Run("default under the home directory", func(t *testing.T) {
		viper.Set("audit.db_path", "")

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "tankboard", "audit.db"), AuditDBPath())
	})
}

func TestActor(t *testing.T) {
	t.Run("configured actor wins", func(t *testing.T) {
		viper.Set("audit.actor", "dispatcher")
		defer viper.Set("audit.actor", "")

		assert.Equal(t, "dispatcher", Actor())
	})

	t.Run("falls back to OS user", func(t *testing.T) {
		viper.Set("audit.actor", "")
		t.Setenv("USER", "mtamm")

		assert.Equal(t, "mtamm", Actor())
	})

	t.Run("last resort default", func(t *testing.T) {
		viper.Set("audit.actor", "")
		t.Setenv("USER", "")

		assert.Equal(t, "operator", Actor())
	})
}
