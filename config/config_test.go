package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kasuboski/episodez/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if !errors.Is(err, wantErr) {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("fail to unmarshal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("")
		cu.EXPECT().Unmarshal(gomock.Any()).Times(1).Return(wantErr)

		_, err := New(cu)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Organize: Organize{
				Ignore:           "done",
				Cleanup:          true,
				CleanupPolicy:    "empty",
				RemoveDuplicates: true,
				Extensions:       []string{".mkv", ".mp4"},
			},
			Password: Password{
				Length:  20,
				Classes: []string{"numbers", "special"},
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
		assert.NoError(t, c.Validate())
	})

	t.Run("success with defaults", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		SetDefaults(cu)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Organize: Organize{
				CleanupPolicy: "video",
				Extensions:    []string{".mp4", ".mkv", ".avi", ".mov"},
			},
			Password: Password{
				Length: 12,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
		assert.NoError(t, c.Validate())
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Organize: Organize{CleanupPolicy: "video", Extensions: []string{".mkv"}},
			Password: Password{Length: 12, Classes: []string{"lowercase"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty policy", mutate: func(c *Config) { c.Organize.CleanupPolicy = "" }},
		{name: "unknown policy", mutate: func(c *Config) { c.Organize.CleanupPolicy = "all" }, wantErr: true},
		{name: "extension without dot", mutate: func(c *Config) { c.Organize.Extensions = []string{"mkv"} }, wantErr: true},
		{name: "ignore with separator", mutate: func(c *Config) { c.Organize.Ignore = "a/b" }, wantErr: true},
		{name: "negative length", mutate: func(c *Config) { c.Password.Length = -1 }, wantErr: true},
		{name: "unknown class", mutate: func(c *Config) { c.Password.Classes = []string{"spesiel_chars"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
