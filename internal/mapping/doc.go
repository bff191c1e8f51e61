// Package mapping holds field mapping records and the session files that
// persist them.
//
// A FieldMapping binds one target field, by name, to a source:
//
//	target_field: Supervisory Organization ID
//	source_type: file_column        # file_column | global_attribute | hardcoded | dynamic_function | unmapped
//	source_value: Org Code
//	transformation: none            # pass-through tag, not interpreted
//	confidence: 87.5                # set by auto-mapping only
//	type_value: Organization_Reference_ID
//
// At most one record exists per target field; Set.Upsert supersedes rather
// than merges.
//
// # Session files
//
// A session bundles everything needed to regenerate a request:
//
//	service: Create_Position
//	mappings: [...]
//	choiceSelections:
//	  pre_hire_selection: applicant_reference
//	choiceFieldValues:
//	  Contract_Contingent_Worker_Data.Applicant_Reference.ID: A-100
//	  Contract_Contingent_Worker_Data.Applicant_Reference.ID_type: Applicant_ID
//	sampleRow:
//	  Org Code: SUP-1
//	smartPaths:
//	  - displayName: Requester Email
//	    jsonPath: request.attributes[0].value
//	    ...
//
// Files ending in .json are read and written as JSON, anything else as YAML.
package mapping
