// Package manifest loads exemplar manifests and validates generated
// exemplar metadata. A manifest is a JSON (or YAML) array of descriptors;
// metadata records are checked against the JSON Schema embedded from
// schema/metadata.schema.json.
package manifest
