package types

import (
	"errors"
	"fmt"
)

// ConfigErrorKind enumerates every way a map file can fail validation.
// The set is closed: the loader produces no other kinds.
type ConfigErrorKind string

const (
	ErrKindMissingRepositories          ConfigErrorKind = "missing_repositories"
	ErrKindRepositoryNotList            ConfigErrorKind = "repository_not_list"
	ErrKindInvalidRepositoryURL         ConfigErrorKind = "invalid_repository_url"
	ErrKindMissingMapping               ConfigErrorKind = "missing_mapping"
	ErrKindMappingNotList               ConfigErrorKind = "mapping_not_list"
	ErrKindMappingEntryNotObject        ConfigErrorKind = "mapping_entry_not_object"
	ErrKindPathsNotList                 ConfigErrorKind = "paths_not_list"
	ErrKindInvalidPath                  ConfigErrorKind = "invalid_path"
	ErrKindDuplicatePaths               ConfigErrorKind = "duplicate_paths"
	ErrKindRepositoriesNotList          ConfigErrorKind = "repositories_not_list"
	ErrKindUnknownRepositoryReference   ConfigErrorKind = "unknown_repository_reference"
	ErrKindDuplicateRepositoryReference ConfigErrorKind = "duplicate_repository_reference"
	ErrKindInvalidTerminatingFlag       ConfigErrorKind = "invalid_terminating_flag"
	ErrKindInvalidThreshold             ConfigErrorKind = "invalid_threshold"
)

// ConfigError reports the first constraint a map file violated. Source
// identifies the document (usually its file path), Reason names the
// offending field or value.
type ConfigError struct {
	Kind   ConfigErrorKind
	Source string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("map file %s could not be loaded: %s", e.Source, e.Reason)
}

// Is matches any *ConfigError of the same kind, so callers can probe
// for a specific failure with errors.Is(err, &ConfigError{Kind: k}).
func (e *ConfigError) Is(target error) bool {
	var other *ConfigError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == "" || other.Kind == e.Kind
}

// NewConfigError builds a ConfigError for the given document source.
func NewConfigError(kind ConfigErrorKind, source string, format string, args ...any) *ConfigError {
	return &ConfigError{
		Kind:   kind,
		Source: source,
		Reason: fmt.Sprintf(format, args...),
	}
}

// ErrThresholdNotSupported is the resolution-time failure raised when a
// matching rule demands agreement across more than one repository.
// Quorum checking of index contents is a declared gap: the error
// surfaces lazily, at the point the rule's groups would be emitted.
type ErrThresholdNotSupported struct {
	Threshold    int
	Repositories []string
}

func (e *ErrThresholdNotSupported) Error() string {
	return fmt.Sprintf("threshold %d not supported yet: repositories %v", e.Threshold, e.Repositories)
}
