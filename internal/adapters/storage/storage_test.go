package storage

import (
	"testing"

	"github.com/stretchr/testify/mock"
	mocks "weathercli.app/internal/mocks"
)

func setupLoggerMock(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything).Maybe()
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything).Maybe()
	return logger
}
