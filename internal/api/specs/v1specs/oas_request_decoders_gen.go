// Code generated by ogen, DO NOT EDIT.

package v1specs
