package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarot/internal/util"
	"tarot/pkg/tarot"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("TAROT_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("TAROT_DEALS", "12")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(5, cfg.Players)
	a.True(cfg.Random)
	a.True(cfg.NoSlam)
	a.True(cfg.Auto, "defaults are kept")
	a.Equal(int64(42), cfg.Seed)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(12, cfg.Deals, "the environment wins over the file")

	// ensure that it's only loaded once
	_ = os.Setenv("TAROT_DEALS", "13")
	// ensure we aren't using a pointer
	cfg.Deals = 1
	cfg = Instance()
	a.Equal(12, cfg.Deals)

	opts, err := cfg.Options()
	require.NoError(t, err)
	a.Equal(tarot.ModeFive, opts.Mode)
	a.Equal(12, opts.Deals)
	a.True(opts.NoSlam)
}

func TestLoad_missingFile(t *testing.T) {
	clear1 := util.SetEnv("TAROT_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("TAROT_NO_SLAM", "true")
	defer clear2()

	require.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.NoSlam)
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, tarot.DefaultOptions(), opts)

	cfg.Players = 6
	_, err = cfg.Options()
	assert.Equal(t, tarot.PlayerCountError(6), err)
}
