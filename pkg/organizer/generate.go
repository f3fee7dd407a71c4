package organizer

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_duplicate_resolver.go github.com/kasuboski/episodez/pkg/organizer DuplicateResolver
