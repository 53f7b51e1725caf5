// Package translator defines the translation backend interface and
// implementations.
package translator

import "github.com/ZaguanLabs/arabizi"

// Translator is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Translator = arabizi.Translator

// TranslateRequest is an alias to the main package type.
type TranslateRequest = arabizi.TranslateRequest
