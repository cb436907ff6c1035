package pkg

const (
	DEFAULT_INPUT_FILENAME = "test.net"
	OUTPUT_FILENAME_PREFIX = "kernighan_lin_out_"
	OUTPUT_FILENAME_EXT    = ".txt"
	BZIP2_EXT              = ".bz2"
)

const (
	DEFAULT_BATCH_WORKERS        = 4
	DEFAULT_PARTITION_CACHE_SIZE = 1 << 10
	DEFAULT_MAX_NETLIST_EDGES    = 200000
	DEFAULT_MAX_NETLIST_VERTICES = 20000
)
