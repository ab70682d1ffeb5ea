package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json is a drop-in replacement for encoding/json across the handler
// package.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
