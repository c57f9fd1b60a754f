package ui

// helpText is the man-page style help view. Any key returns to the table.
const helpText = `NTP Server Monitor - Help Page

DESCRIPTION
    This application monitors multiple NTP servers and displays their status
    and performance metrics.

DISPLAY COLUMNS
    Server:         The hostname of the NTP server
    RTT (ms):       Round trip time in milliseconds. Format: current (min-max)
    Offset (s):     Time offset from the server in seconds. Format: current (min-max)
    NTP Time:       Current time reported by the NTP server
    Root Delay:     Total network path delay to the reference clock. Format: current (min-max)
    Root Disp:      Total dispersion to the reference clock. Format: current (min-max)
    Stratum:        The stratum level of the server. Format: current (min-max)

METRICS EXPLANATION
    RTT (Round Trip Time):
        The time it takes for a request to go to the server and come back.
        Lower values indicate better network connectivity.

    Offset:
        The time difference between your system and the NTP server.
        Closer to zero indicates better synchronization.

    Root Delay:
        The total delay along the path to the stratum 1 time source.
        Lower values are generally better.

    Root Dispersion:
        The maximum error relative to the primary reference source.
        Lower values indicate higher accuracy.

    Stratum:
        Indicates how many hops away the server is from a primary time source.
        Lower numbers (especially 1 or 2) are typically more reliable.

COLOR CODING
    The table alternates between two colors for better readability.
    The header and footer use a distinct color for emphasis.

COMMANDS
    q: Quit the application
    c: Cycle through available color schemes
    h: Display this help page
    Up/Down Arrow Keys: Select a server
    d: Display detailed information for the selected server

UPDATE FREQUENCY
    NTP servers are queried on a fixed interval (5 seconds by default) and
    the display updates after every cycle.

Press any key to return to the main display.`
