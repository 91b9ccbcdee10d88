//go:build glfw

package main

import _ "github.com/kjkrol/spinquad/internal/platform/glfw3"
