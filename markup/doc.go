// Package markup parses XML parts into a generic, order-preserving element tree.
//
// The tree keeps every element with its namespace URI and local name, its
// attributes in source order, and its children (elements and character data)
// in source order. It is the input to the typed mappers in package odt.
//
// # Parsing
//
//	root, err := markup.Parse(data)
//	if err != nil {
//	    var derr *markup.DecodeError
//	    if errors.As(err, &derr) {
//	        // derr.Path, derr.Line
//	    }
//	}
//
// Parsing never recurses on the call stack; nesting is tracked with an
// explicit stack and bounded by WithMaxDepth (DefaultMaxDepth by default).
//
// # Encodings
//
// UTF-8 (with or without BOM) is read directly. UTF-16 input is detected by
// its byte order mark and transcoded. Other encodings named in the XML
// declaration are handled through golang.org/x/net/html/charset.
package markup
