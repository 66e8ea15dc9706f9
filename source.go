package greeter

// Names under which the Greeter source is compiled and looked up.
const (
	GreeterSourceUnit = "contract"
	GreeterContract   = "Greeter"
)

// GreeterSource is the Solidity source of the demo contract. The constructor
// stores "Hello"; setGreeting replaces it.
const GreeterSource = `
pragma solidity ^0.4.0;

contract Greeter {
    string public greeting;

    function Greeter() {
        greeting = 'Hello';
    }

    function setGreeting(string _greeting) public {
        greeting = _greeting;
    }

    function greet() constant returns (string) {
        return greeting;
    }
}
`
