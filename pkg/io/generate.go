package io

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_file_io.go github.com/kasuboski/episodez/pkg/io FileIO
