// Package arabizi converts informally romanized Arabic ("Franco-Arabic" or
// Arabizi) into Arabic script and decides whether a machine translation of it
// is worth surfacing.
//
// The pipeline transliterates the input (digits like 3 and 7 stand in for
// Arabic phonemes), hands the result to a pluggable translation backend, and
// suppresses the output when the translation is merely a case- or
// punctuation-different echo of the input.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/arabizi"
//	    "github.com/ZaguanLabs/arabizi/translator"
//	)
//
//	func main() {
//	    backend := translator.NewGoogleTranslator(translator.GoogleConfig{})
//
//	    p := arabizi.NewPipeline("en", backend)
//
//	    result, err := p.Process(context.Background(), "3omri ana bahebak")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if result.Emit {
//	        fmt.Println(result.Payload) // my life i love you
//	    }
//	}
package arabizi
