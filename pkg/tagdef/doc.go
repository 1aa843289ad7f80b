// Package tagdef loads tag definitions from YAML files and instantiates
// them against a registry.
//
// A definition file names a set of tags with their types, aliases,
// writability flags and optional initial values:
//
//	version: 1
//	tags:
//	  - name: motor.speed
//	    alias: 1
//	    type: int32
//	    local_writable: true
//	    initial: 1500
//	  - name: device.id
//	    alias: 2
//	    type: uuid
//	    local_writable: true
//	    validate: uuid
//
// Instantiate creates one backing cell per definition in a Bank that owns
// them, standing in for the embedded program's memory. Production callers
// that own their cells should create tags directly on the registry instead.
package tagdef
