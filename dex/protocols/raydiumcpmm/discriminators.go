package raydiumcpmm

// Instruction discriminators (8-byte Anchor sighash), grounded on
// original_source/.../raydium_cpmm/events.rs's discriminators module.
var (
	SwapBaseInIx  = [8]byte{143, 190, 90, 218, 196, 30, 51, 222}
	SwapBaseOutIx = [8]byte{55, 217, 98, 86, 163, 74, 180, 173}
	DepositIx     = [8]byte{242, 35, 198, 137, 82, 225, 242, 182}
	InitializeIx  = [8]byte{175, 175, 109, 31, 13, 152, 155, 237}
	WithdrawIx    = [8]byte{183, 18, 70, 156, 148, 109, 161, 34}
)

// SwapEventLogDisc is the Anchor event discriminator carried by the base64
// "Program data:" log line CPMM emits after a swap: sha256("event:SwapEvent")[:8].
var SwapEventLogDisc = [8]byte{0x40, 0xc6, 0xcd, 0xe8, 0x26, 0x08, 0x71, 0xe2}
