package main

import "errors"

var errMethodNotAllowed = errors.New("method not allowed")
