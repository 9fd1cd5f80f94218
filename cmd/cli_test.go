package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestWithDefaultCommand(t *testing.T) {
	var testCases = []struct {
		args   []string
		expect []string
	}{
		{nil, []string{"serve"}},
		{[]string{"-f", "cfg.yaml"}, []string{"serve", "-f", "cfg.yaml"}},
		{[]string{"exec", "-p", "express"}, []string{"exec", "-p", "express"}},
		{[]string{"--help"}, []string{"--help"}},
	}
	for i, tc := range testCases {
		assert.EqualValues(t, tc.expect, withDefaultCommand(tc.args), "case %d", i)
	}
}

func TestExtractConfigPath(t *testing.T) {
	var testCases = []struct {
		args   []string
		expect string
	}{
		{[]string{"serve"}, ""},
		{[]string{"serve", "-f", "a.yaml"}, "a.yaml"},
		{[]string{"exec", "--config", "b.yaml", "-p", "x"}, "b.yaml"},
		{[]string{"serve", "--config=s3://bucket/c.yaml"}, "s3://bucket/c.yaml"},
		{[]string{"serve", "-f"}, ""},
	}
	for i, tc := range testCases {
		assert.EqualValues(t, tc.expect, extractConfigPath(tc.args), "case %d", i)
	}
}

func TestOptionsInit(t *testing.T) {
	opts := &Options{}
	opts.Init("exec")
	assert.NotNil(t, opts.Exec)
	assert.Nil(t, opts.Serve)

	opts = &Options{}
	opts.Init("unknown")
	assert.Nil(t, opts.Serve)
	assert.Nil(t, opts.Exec)
	assert.Nil(t, opts.ListTools)
	assert.Nil(t, opts.Tool)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.WarnLevel)
	logger.Info("hidden")
	logger.Warn("registry failure", "package", "express")
	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, "registry failure")
	assert.Contains(t, out, "package=express")
}
