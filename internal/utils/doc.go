// Package utils provides small input helpers shared by commands.
package utils
