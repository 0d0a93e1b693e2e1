package validate

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/menumap/internal/cmd/application"
	"github.com/agentstation/menumap/pkg/errors"
	"github.com/agentstation/menumap/pkg/menus"
)

func nestedDataset(t *testing.T) *menus.Dataset {
	t.Helper()
	ds, err := menus.LoadFile("../../../../pkg/menus/testdata/nested.json")
	require.NoError(t, err)
	return ds
}

func execute(t *testing.T, mock *application.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewReport(t *testing.T) {
	report := NewReport(nestedDataset(t))

	assert.Equal(t, "nested", report.Layout)
	assert.Equal(t, 2, report.Restaurants)
	assert.Equal(t, 1, report.Items)
	assert.Equal(t, 1, report.EmptyMenus)
	assert.Contains(t, report.Source, "nested.json")
}

func TestValidateText(t *testing.T) {
	ds := nestedDataset(t)
	mock := &application.Mock{
		DatasetFunc:      func() (*menus.Dataset, error) { return ds, nil },
		OutputFormatFunc: func() string { return "table" },
	}

	out, err := execute(t, mock, "--details")
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset is valid")
	assert.Contains(t, out, "layout:      nested")
	assert.Contains(t, out, "restaurants: 2")
	assert.Contains(t, out, "5.00", "details include the menu total")
}

func TestValidateJSON(t *testing.T) {
	ds := nestedDataset(t)
	mock := &application.Mock{
		DatasetFunc:      func() (*menus.Dataset, error) { return ds, nil },
		OutputFormatFunc: func() string { return "json" },
	}

	out, err := execute(t, mock)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Restaurants)
	assert.Equal(t, "nested", report.Layout)
}

func TestValidateStartupError(t *testing.T) {
	mock := &application.Mock{
		DatasetFunc: func() (*menus.Dataset, error) {
			return menus.LoadFile("../../../../pkg/menus/testdata/duplicate_id.json")
		},
	}

	_, err := execute(t, mock)
	require.Error(t, err)
	assert.True(t, errors.IsStartup(err))
	assert.Contains(t, err.Error(), "duplicate_id.json")
}
