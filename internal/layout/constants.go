// internal/layout/constants.go
package layout

// Code table layout constants.
// These values define the persisted byte layout and MUST NOT be configurable.
// Changing any of them silently re-addresses every stored code.

// ---- CODE GEOMETRY ----

// CodeSize is the width of one stored RawCode in bytes.
const CodeSize = 4

// ButtonsPerRemote is the fixed number of button slots per remote.
// Slot 0 belongs to the zero key, slots 1..21 to the numbered buttons.
const ButtonsPerRemote = 22

// RemoteStride is the number of bytes occupied by one remote.
const RemoteStride = ButtonsPerRemote * CodeSize

// ---- SLOT INDICES ----

// ZeroKeySlot is the canonical slot of the physical "0" key.
const ZeroKeySlot = 0

// FirstNumberedSlot is the slot of button "1".
const FirstNumberedSlot = 1

// LastSlot is the highest valid button slot (inclusive).
const LastSlot = ButtonsPerRemote - 1

// ---- LIMITS ----

// DefaultRemotes is the number of remotes used when none is configured.
const DefaultRemotes = 4

// MaxAddressable is the largest medium size reachable with 16-bit addresses.
const MaxAddressable = 1 << 16

// ---- ERASED PATTERN ----

// ErasedByte is the value of a never-written EEPROM cell.
const ErasedByte byte = 0xFF

// ErasedCode is the RawCode read back from a never-written slot.
const ErasedCode RawCode = 0xFFFFFFFF
