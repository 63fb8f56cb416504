//go:build !capzdebug

package capz

const debugging = false
