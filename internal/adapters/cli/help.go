package cli

import "fmt"

const helpText = `Usage information:
    weather <command> [-<name> <param>] ...
Commands:
    help - view usage information
    save - save default configuration
        example:
            weather save -provider OpenWeather -temp C
            weather save -address "your address"
    get - view weather
        example:
            weather get -address Kyiv -date now
            weather get -provider WeatherApi -date "1, 12"
            weather get -day 3 -speed miles
    providers - view all providers
        example:
            weather providers
Configuration:
    address [<address>] - weather address
    date [now, "<day>, <hour>"] - weather date, days from today and hour of that day
    day [<day>] - days from today, keeps the hour
    hour [0-23] - hour of the requested day
    temp [C, F, K] - temperature type (Celsius, Fahrenheit, Kelvin)
    speed [meter, miles] - wind speed type (meter/sec, miles/hour)
    provider [OpenWeather, WeatherApi] - weather provider
`

func (a *Adapter) printHelp() {
	fmt.Fprint(a.stdout, helpText)
}
