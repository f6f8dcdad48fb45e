package kafka

var TruncateForTest = truncate
