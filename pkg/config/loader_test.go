package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidation/pkg/config"
)

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type PrefixedConfig struct {
	Strict bool   `env:"STRICT"`
	Level  string `env:"LEVEL" envDefault:"info"`
}

type EnvFileConfig struct {
	Value string `env:"TEST_ENV_FILE_VALUE"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, false, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")

	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.TestString)

	config.ResetCache()

	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.TestString)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
}

func TestParse(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		t.Setenv("APP_STRICT", "true")
		t.Setenv("APP_LEVEL", "debug")

		var cfg PrefixedConfig
		require.NoError(t, config.Parse(&cfg, config.WithPrefix("APP_")))
		assert.True(t, cfg.Strict)
		assert.Equal(t, "debug", cfg.Level)
	})

	t.Run("with explicit environment", func(t *testing.T) {
		var cfg PrefixedConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{"STRICT": "true"}))
		require.NoError(t, err)
		assert.True(t, cfg.Strict)
		assert.Equal(t, "info", cfg.Level)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg PrefixedConfig
		err := config.Parse(&cfg, config.WithEnvironment(map[string]string{"STRICT": "maybe"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_VALUE=from_file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_ENV_FILE_VALUE") })

	require.NoError(t, config.LoadEnv(path))

	var cfg EnvFileConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFile)
}
