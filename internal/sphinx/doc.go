// Package sphinx assembles the settings mapping read by the Sphinx HTML build
// and renders it as a conf.py, JSON or YAML document.
package sphinx
