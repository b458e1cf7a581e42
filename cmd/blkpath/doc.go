// blkpath is a command line tool that resolves the block device backing a
// file or directory and prints its device node path.
//
// Usage:
//
//	blkpath [OPTIONS] PATH [inventory]
//
// Logging:
//
//	-v, --log-level=[debug|info|error]  Verbosity level for stderr and log
//	                                    file (default: info)
//	    --log-file=                     File name to store logs
//	    --log-file-format=[json|text]   Format of file logs (default: json)
//	    --log-file-rotate               Rotate log files
//	    --log-file-size=                Maximum size in MB of the log file
//	                                    before it gets rotated (default: 100)
//	    --log-file-age=                 Number of days to retain old log
//	                                    files, 0 means forever (default: 0)
//	    --log-file-number=              Maximum number of old log files to
//	                                    retain, 0 to retain all (default: 0)
//
// Application Options:
//
//	--version                           Print version information and exit
//
// Help Options:
//
//	-h, --help                          Show this help message
//
// Arguments:
//
//	PATH                                File or directory to resolve the
//	                                    backing block device for
//
// Available commands:
//
//	inventory      List mounted block devices
//
// On success the resolved device node (e.g. /dev/nvme0n1p2) is printed to
// standard output and the exit code is 0. Failures are reported on standard
// error with distinct exit codes: 2 when the device identifier maps to no
// known device, 3 on I/O failures, 4 on a malformed mount table.
package main
