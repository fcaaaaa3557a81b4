package section

// Delimiter bytes defined by the MARC21 binary layout.
const (
	FieldTerminator   = 0x1E // FieldTerminator ends the directory and every field data block.
	RecordTerminator  = 0x1D // RecordTerminator is the final byte of every record.
	SubfieldIndicator = 0x1F // SubfieldIndicator precedes every subfield code inside a data field.
)

// Offsets and section sizes in the binary record.
const (
	LeaderSize         = 24 // fixed leader size in bytes
	DirectoryEntrySize = 12 // fixed directory entry size: 3-digit tag + 4-digit length + 5-digit offset

	RecordLengthOffset = 0  // byte offset of the 5-digit record length in the leader
	RecordLengthWidth  = 5  // width of the record length field
	BaseAddressOffset  = 12 // byte offset of the 5-digit base address in the leader
	BaseAddressWidth   = 5  // width of the base address field

	MinRecordSize = LeaderSize + 2 // leader + directory terminator + record terminator
)

// ControlTagLimit is the first data-field tag. Tags that compare below it
// ("001".."009") are control fields; everything else carries indicators and
// subfields.
const ControlTagLimit = "010"
