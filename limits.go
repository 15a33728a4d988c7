package toml

// Size ceilings from invariant 4 (spec.md §3), carried over verbatim from
// original_source/include/mytoml/mytoml.h's MYTOML_MAX_* macros.
const (
	maxIdentifierLength = 256             // MYTOML_MAX_ID_LENGTH
	maxSubkeys          = 131072          // MYTOML_MAX_SUBKEYS
	maxArrayLength      = 131072          // MYTOML_MAX_ARRAY_LENGTH
	maxStringLength     = 4096            // MYTOML_MAX_STRING_LENGTH
	maxFileSize         = 1 << 30         // MYTOML_MAX_FILE_SIZE (1 GiB)
	maxLines            = 16 * 1024 * 1024 // MYTOML_MAX_NUM_LINES
)
