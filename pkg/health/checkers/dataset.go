package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/skillpath/pkg/dataset"
)

// DatasetChecker reports not ready until a snapshot with at least one job is installed.
type DatasetChecker struct {
	holder *dataset.Holder
}

func NewDatasetChecker(holder *dataset.Holder) *DatasetChecker {
	return &DatasetChecker{holder: holder}
}

func (c *DatasetChecker) Name() string { return "datasets" }

func (c *DatasetChecker) Check(_ context.Context) error {
	s := c.holder.Current()
	if s == nil {
		return errors.New("datasets not loaded")
	}
	if s.Stats().Jobs == 0 {
		return errors.New("jobs dataset is empty")
	}
	return nil
}
