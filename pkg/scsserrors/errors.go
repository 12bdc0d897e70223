package scsserrors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrGenerate indicates an error occurred during SCSS generation.
	ErrGenerate = errors.New("generate SCSS")

	// ErrFormat indicates an error occurred while formatting SCSS.
	ErrFormat = errors.New("format SCSS")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrThemeNotFound indicates a theme wasn't found in the theme collection.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrParseArgs indicates an error occurred while parsing arguments.
	ErrParseArgs = errors.New("parse arguments")

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrJSONMarshal indicates an error occurred while marshaling JSON.
	ErrJSONMarshal = errors.New("marshal JSON")

	// ErrYAMLUnmarshal indicates an error occurred while unmarshaling YAML.
	ErrYAMLUnmarshal = errors.New("unmarshal YAML")
)
