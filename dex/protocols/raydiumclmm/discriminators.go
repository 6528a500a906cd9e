package raydiumclmm

// Instruction discriminators (8-byte Anchor sighash), grounded byte-for-byte
// on original_source/.../raydium_clmm/events.rs's discriminators module.
var (
	SwapIx        = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	SwapV2Ix      = [8]byte{43, 4, 237, 11, 26, 201, 30, 98}
	CreatePoolIx  = [8]byte{233, 146, 209, 142, 207, 104, 64, 188}
)

// SwapEventLogDisc is the 8-byte Anchor event discriminator carried by the
// base64 "Program data:" log line CLMM emits after a swap. The source
// events.rs never exports a SWAP_EVENT constant of its own; Raydium CPMM's
// sibling module names the identical value for its own SwapEvent struct,
// which is the standard Anchor sha256("event:SwapEvent")[:8] hash, so CLMM's
// same-named event carries the same bytes.
var SwapEventLogDisc = [8]byte{0x40, 0xc6, 0xcd, 0xe8, 0x26, 0x08, 0x71, 0xe2}
