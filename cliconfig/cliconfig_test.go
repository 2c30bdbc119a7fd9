package cliconfig

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasSaneCacheCapacity(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 128, cfg.CacheCapacity)
}

func TestLoad_NilViperReturnsDefault(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysOntoDefault(t *testing.T) {
	v := viper.New()
	v.Set("filter_expr", `{{ eq .class.kind "class" }}`)
	v.Set("disk_cache", true)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, `{{ eq .class.kind "class" }}`, cfg.FilterExpr)
	assert.True(t, cfg.DiskCache)
	assert.Equal(t, 128, cfg.CacheCapacity, "unset keys keep the default")
}

func TestLoad_NonPositiveCacheCapacityFallsBackToDefault(t *testing.T) {
	v := viper.New()
	v.Set("cache_capacity", -5)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.CacheCapacity)
}
